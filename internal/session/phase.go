package session

import "github.com/ndalink/ndasign/internal/model"

// Phase is the signing session lifecycle state. Each variant carries only
// the data valid in that state, so a dead code without a dead phase (or a
// result outside Done) cannot be represented.
//
// Transitions: Loading -> View | Dead; View -> Sign | Dead; Sign -> Done |
// View. Dead and Done are terminal.
type Phase interface {
	isPhase()
}

// Loading is the initial phase while the token resolves.
type Loading struct{}

// View shows the document with read tracking.
type View struct{}

// Sign shows the signature capture surface.
type Sign struct{}

// Done is terminal; the session ended with a stored confirmation.
type Done struct {
	Result model.SignResult
}

// Dead is terminal; the link cannot be used. Code is one of the portal
// error codes (or empty for an unclassified server rejection).
type Dead struct {
	Code    string
	Message string
}

func (Loading) isPhase() {}
func (View) isPhase()    {}
func (Sign) isPhase()    {}
func (Done) isPhase()    {}
func (Dead) isPhase()    {}
