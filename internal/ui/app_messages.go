package ui

// OpenModalMsg asks the app to show the dialog.
type OpenModalMsg struct {
	Trigger Trigger
}

// CloseModalMsg asks the app to hide the dialog.
type CloseModalMsg struct {
	Trigger Trigger
}

// frameMsg advances the transition. id ties it to the transition run that
// scheduled it; frames from an older run are dropped.
type frameMsg struct {
	id int
}
