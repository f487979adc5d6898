// Package core provides the cell, style and color types shared by the form
// renderer and its backends. It has no dependency on either, which keeps
// backends free of renderer imports.
package core
