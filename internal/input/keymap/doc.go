// Package keymap maps keys to form actions.
//
// A field consumes the keys it edits with. Whatever it lets through is
// looked up in the form's Keymap:
//
//	km := keymap.Default()
//	if err := km.Bind("<C-s>", keymap.ActionSubmit); err != nil {
//	    return err
//	}
//	if action, ok := km.Lookup(ev); ok {
//	    // run action
//	}
//
// Keys use the key package notation ("<Tab>", "<C-q>", "Ctrl+S").
package keymap
