package diag

// Note attaches secondary context to a diagnostic, usually pointing at the
// other half of a conflict (e.g. the first occurrence of a duplicated name).
type Note struct {
	Subject string
	Msg     string
}

// Diagnostic is one validation finding. Subject identifies the topology
// element at fault, either "domain" or "domain.member"; it is empty for
// findings that concern the whole run (I/O failures and the like).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Subject  string
	Notes    []Note
}
