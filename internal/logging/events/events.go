package events

import "github.com/zmilan/sapling/internal/logging"

type AppTracer struct{}

type CommandTracer struct{}

type TreeTracer struct{}

type abortReason string

const (
	ReasonEscape    abortReason = "escape"
	ReasonInterrupt abortReason = "interrupt"
)

var (
	App     = AppTracer{}
	Command = CommandTracer{}
	Tree    = TreeTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(reason string) {
	logging.Trace("app.stop", map[string]interface{}{"reason": reason})
}

func (CommandTracer) Append(buffer string) {
	logging.Trace("command.append", map[string]interface{}{"buffer": buffer})
}

func (CommandTracer) Resolve(buffer, action string) {
	logging.Trace("command.resolve", map[string]interface{}{"buffer": buffer, "action": action})
}

func (CommandTracer) Abort(buffer string, reason abortReason) {
	logging.Trace("command.abort", map[string]interface{}{"buffer": buffer, "reason": string(reason)})
}

func (TreeTracer) Replace(ref int, node string) {
	logging.Trace("tree.replace", map[string]interface{}{"ref": ref, "node": node})
}

func (TreeTracer) Select(direction string, ref int) {
	logging.Trace("tree.select", map[string]interface{}{"direction": direction, "ref": ref})
}

func (TreeTracer) Delete(ref, parent int) {
	logging.Trace("tree.delete", map[string]interface{}{"ref": ref, "parent": parent})
}

func (TreeTracer) Refused(op string, err error) {
	if err == nil {
		return
	}
	logging.Trace("tree.refused", map[string]interface{}{"op": op, "error": err.Error()})
}
