package consts

// Capacity limits. The websocket server terminates connections beyond
// MaxConnections before they enter the protocol, and the table never holds
// more than MaxSeats active players; everyone else lurks.
const (
	MaxConnections = 8
	MaxSeats       = 4
)

type DeckKind int

const (
	// DeckStandard is the full 52-card universe.
	DeckStandard DeckKind = iota
	// DeckDurak drops ranks 2-5, leaving a 36-card universe, and the next
	// card to be drawn is shown to the whole table.
	DeckDurak
)

const (
	StandardHandSize = 13
	DurakHandSize    = 6
)

// EasterNames get a preset hand on a 13-card deal instead of a random draw.
var EasterNames = map[string]bool{
	"lucky dog":        true,
	"its my birthday":  true,
	"it's my birthday": true,
}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsConnectionsFull = NewErr(1, true, "Connections full. ")
	ErrorsMessageInvalid  = NewErr(1, false, "Message invalid. ")
	ErrorsTypeUnknown     = NewErr(1, false, "Message type unknown. ")
)
