package vi

// Command is the closed set of editing commands the interpreter can
// produce. A Command is a tagged value: Kind selects which of the
// payload fields is meaningful. Dispatch is a single exhaustive
// switch in the executor, so adding a command without handling it is
// caught at review rather than at runtime.

// Kind discriminates the Command union.
type Kind int

const (
	// KindMotion moves the cursor without changing content.
	KindMotion Kind = iota

	// KindOperator is a register-writing line operation (dd, yy) or
	// selection delete.
	KindOperator

	// KindEnterInsert switches to insertion mode, optionally editing
	// first (o, O) or repositioning (a).
	KindEnterInsert

	// KindMisc covers the remaining one-shot commands.
	KindMisc
)

// Motion identifies a cursor movement.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionDown
	MotionUp
	MotionLineStart
	MotionLineEnd
	MotionFirstNonBlank
	MotionWordRight
	MotionWordLeft
	MotionDocStart
	MotionDocEnd
)

// Operator identifies a register-writing operation.
type Operator int

const (
	// OpDeleteLine removes the current line into the register.
	OpDeleteLine Operator = iota

	// OpYankLine copies the current line into the register.
	OpYankLine

	// OpDeleteSelection removes the active selection into the
	// register. Produced for d and x when a selection exists.
	OpDeleteSelection
)

// InsertKind identifies how insertion mode is entered.
type InsertKind int

const (
	// InsertHere enters insertion mode at the current cursor.
	InsertHere InsertKind = iota

	// InsertAfter advances one position first (a).
	InsertAfter

	// InsertLineBelow opens an indented line below (o).
	InsertLineBelow

	// InsertLineAbove opens an indented line above (O).
	InsertLineAbove
)

// Misc identifies the remaining commands.
type Misc int

const (
	// MiscDeleteChar deletes the character under the cursor (x with
	// no selection). It does not touch the register.
	MiscDeleteChar Misc = iota

	// MiscPaste inserts the register's line below the current one (p).
	MiscPaste

	// MiscUndo reverts the most recent edit group (u).
	MiscUndo

	// MiscPageDown and MiscPageUp scroll by a page.
	MiscPageDown
	MiscPageUp

	// MiscExtendLineDown and MiscExtendLineUp grow a linewise
	// selection (N, U).
	MiscExtendLineDown
	MiscExtendLineUp
)

// Command is one interpreted editing command.
type Command struct {
	Kind     Kind
	Motion   Motion
	Operator Operator
	Insert   InsertKind
	Misc     Misc
}

func motionCmd(m Motion) Command      { return Command{Kind: KindMotion, Motion: m} }
func operatorCmd(op Operator) Command { return Command{Kind: KindOperator, Operator: op} }
func insertCmd(k InsertKind) Command  { return Command{Kind: KindEnterInsert, Insert: k} }
func miscCmd(m Misc) Command          { return Command{Kind: KindMisc, Misc: m} }

// classify maps a plain navigation-mode character to its Command.
// Composed sequences (dd, yy, gg) and selection-sensitive keys are
// resolved by the engine before classification, so this function only
// sees single-keystroke commands. The second return is false for
// characters that are not bound; the engine swallows those.
func classify(r rune) (Command, bool) {
	switch r {
	case 'h':
		return motionCmd(MotionLeft), true
	case 'l':
		return motionCmd(MotionRight), true
	case 'j':
		return motionCmd(MotionDown), true
	case 'k':
		return motionCmd(MotionUp), true
	case '0':
		return motionCmd(MotionLineStart), true
	case '$':
		return motionCmd(MotionLineEnd), true
	case '^':
		return motionCmd(MotionFirstNonBlank), true
	case 'w':
		return motionCmd(MotionWordRight), true
	case 'b':
		return motionCmd(MotionWordLeft), true
	case 'G':
		return motionCmd(MotionDocEnd), true
	case 'i':
		return insertCmd(InsertHere), true
	case 'a':
		return insertCmd(InsertAfter), true
	case 'o':
		return insertCmd(InsertLineBelow), true
	case 'O':
		return insertCmd(InsertLineAbove), true
	case 'p':
		return miscCmd(MiscPaste), true
	case 'u':
		return miscCmd(MiscUndo), true
	case 'N':
		return miscCmd(MiscExtendLineDown), true
	case 'U':
		return miscCmd(MiscExtendLineUp), true
	}
	return Command{}, false
}
