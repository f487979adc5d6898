// Package key provides the key events a masked field reacts to.
//
//   - Key: identifies a special key, or KeyRune for characters
//   - Modifier: Ctrl, Alt, Shift, Meta
//   - Event: a single key press
//
// # Key Specifications
//
// Configurable bindings, such as the key that toggles insert and overwrite
// mode, are written as specifications:
//
//   - Simple keys: "a", "Insert", "Enter"
//   - With modifiers: "Ctrl+T", "Alt+Insert"
//   - Vim-style: "<Ins>", "<C-t>", "<S-Ins>"
//
// Parse turns a specification into an Event; Event.Matches compares an
// incoming event against one.
package key
