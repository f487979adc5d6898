// Package mode provides the edit mode state machine of a masked field.
//
// A field is either in Insert mode, where typing shifts later characters
// to the right, or in Overwrite mode, where typing replaces the character
// under the cursor and the cursor cell is highlighted.
//
// Which modes a field may use is fixed when the Manager is created: masks
// mixing character classes are locked in Overwrite, because shifting a
// digit into a letter slot would corrupt the value. Simple masks start in
// Insert and may toggle.
//
//	m := mode.NewManager(mode.Insert, true)
//	m.OnChange(func(from, to mode.Mode) { ... })
//	m.Toggle() // Insert -> Overwrite
//
// Each mode also chooses the cursor style a host should display.
package mode
