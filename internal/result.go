package internal

// Envelope is the document written to stdout.
type Envelope struct {
	Items []Action `json:"items"`
}

// Assemble wraps `actions` into an Envelope without reordering them.
func Assemble(actions []Action) Envelope {
	if actions == nil {
		actions = []Action{}
	}
	return Envelope{Items: actions}
}
