// Package lua runs user-supplied field validators written in Lua.
//
// This package wraps the gopher-lua library to provide:
//   - Sandboxed Lua state management
//   - Execution timeouts enforced through the state's context
//   - An engine.Validator backed by a Lua validate function
//
// # Validators
//
// A validator script defines a global function validate(value, masked).
// value is the logical value (no literals) and masked is the mask value
// (literals kept, unfilled slots empty). The function returns nothing or
// true to accept, false to reject with a generic message, or a string to
// reject with that message:
//
//	function validate(value, masked)
//	  if value ~= "" and tonumber(value:sub(1, 2)) > 12 then
//	    return "month must be 01-12"
//	  end
//	end
//
// Build one with NewValidator and pass it to engine.WithValidator:
//
//	v, err := lua.NewValidator("expiry", src)
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//	field, err := engine.New("##/##", engine.WithValidator(v))
//
// # Sandbox
//
// States open only the base, table, string and math libraries. io, os,
// debug and package are never opened, and the base functions that load
// code or modules (dofile, loadfile, load, loadstring, require, module)
// are removed.
package lua
