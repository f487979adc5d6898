// Package engine implements the edit engine of a masked input field.
//
// A Field combines a compiled mask template, the sparse buffer holding the
// characters entered so far, the cursor state and the Insert/Overwrite mode
// into one single-owner value. Hosts drive it by calling its entry points
// (HandleKey, Click, Focus, Blur, Paste) and observe the result through the
// Host capability they supply: after every event the field rewrites the host
// text with the display value and restores the cursor.
//
// # Architecture
//
//	mask.Template ──► buffer.Buffer ◄── cursor.Mapper
//	       │                 │                │
//	       └────────► engine.Field ◄──────────┘
//	                         │
//	                   Host / Scheduler
//
// The template is immutable and may be shared; everything else belongs to one
// Field. A Field is not safe for concurrent use: hosts deliver events from a
// single goroutine, and deferred work (the second phase of a paste) is handed
// to the host's Scheduler so it runs on that same goroutine.
//
// # Values
//
// A field exposes three strings:
//
//	DisplayValue  "(212) 5  -    "   entered data over the blank template
//	MaskValue     "(212) 5##-####"   entered data over the raw template
//	Value         "2125"             entered data only
//
// SetValue accepts either a display string or a run of raw characters.
//
// # Validation
//
// Validate applies the built-in rules (required, then complete) and then any
// custom validators in registration order; the first failure is returned as a
// *ValidationError.
package engine
