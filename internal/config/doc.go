// Package config loads form definitions for maskfield.
//
// A form is a TOML document with an optional title, an optional [theme]
// table of hex colors and one [[field]] table per masked field:
//
//	title = "Contact"
//
//	[theme]
//	accent = "#5F87D7"
//
//	[[field]]
//	name  = "phone"
//	label = "Phone"
//	mask  = "(###) ###-####"
//
//	[[field]]
//	name          = "zip"
//	mask          = "#####-####"
//	allow_partial = true
//	lua_validator = '''
//	function validate(value, masked)
//	  if value:sub(1, 1) == "0" then return "zip cannot start with 0" end
//	end
//	'''
//
//	[keys]
//	submit = ["<C-s>"]
//	clear  = []
//
// Loading runs in three stages: TOML decoding with unknown keys rejected,
// struct validation, and mask compilation. Each stage has its own error
// type so callers can report problems precisely.
//
// # Live reload
//
// Watcher follows a form file on disk and calls back after edits settle.
// It watches the containing directory so that editors which replace files
// atomically are handled.
package config
