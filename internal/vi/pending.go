package vi

// pendingState tracks the first key of a two-key sequence (dd, yy,
// gg). At most one of op and g is set at any time: starting either
// sequence cancels the other, and any unrelated key clears both.
type pendingState struct {
	op    Operator // pending d or y, valid when hasOp
	hasOp bool
	g     bool // pending g
}

// clear resets all pending sequence state.
func (p *pendingState) clear() {
	p.hasOp = false
	p.g = false
}

// setOp arms a pending operator, cancelling any pending g.
func (p *pendingState) setOp(op Operator) {
	p.clear()
	p.op = op
	p.hasOp = true
}

// setG arms a pending g, cancelling any pending operator.
func (p *pendingState) setG() {
	p.clear()
	p.g = true
}

// takeOp consumes a matching pending operator. It returns true only
// when op was the armed operator; in every case the state is cleared.
func (p *pendingState) takeOp(op Operator) bool {
	matched := p.hasOp && p.op == op
	p.clear()
	return matched
}

// takeG consumes a pending g, reporting whether one was armed.
func (p *pendingState) takeG() bool {
	matched := p.g
	p.clear()
	return matched
}
