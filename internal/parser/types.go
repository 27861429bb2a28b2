package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Exit
	Unknown
)

// Quantity is the first bare integer found after the verb: ammo for hunt,
// the offer number for trade.
type Quantity struct {
	Raw string
	N   int
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

// ParseContext carries what the shell knows about the current day.
// An empty Paces list falls back to slow, steady and grueling.
type ParseContext struct {
	Paces []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MaxArgs   int
	Kind      IntentKind
}
