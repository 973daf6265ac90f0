package scene

import "github.com/atotto/clipboard"

// setClipboardText puts text on the system clipboard (used by the viewer's
// copy-report hotkey).
func setClipboardText(text string) error {
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
