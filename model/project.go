package model

import "strings"

// UnnamedProject is used when the Globals group names nothing.
const UnnamedProject = "NULL"

// Project is the part of a .vcxproj file that survives conversion.
type Project struct {
	Name      string
	Version   string   // LanguageStandard, e.g. stdcpp17
	Type      string   // ConfigurationType
	Subsystem string   // Link/SubSystem
	Source    []string // forward-slash paths, document order
}

// IsLibrary reports whether the project builds a static or dynamic library.
func (prj *Project) IsLibrary() bool {
	return prj.Type == "StaticLibrary" || prj.Type == "DynamicLibrary"
}

// IsStatic reports whether the project builds a static library.
func (prj *Project) IsStatic() bool {
	return prj.Type == "StaticLibrary"
}

// IsWindowed reports whether the project links for the Windows subsystem.
func (prj *Project) IsWindowed() bool {
	return prj.Subsystem == "Windows"
}

// NormalizePath converts MSBuild backslash separators to forward slashes.
func NormalizePath(fn string) string {
	return strings.ReplaceAll(fn, `\`, "/")
}
