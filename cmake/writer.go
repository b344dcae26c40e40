package cmake

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/repo-archive-X-rays5/vcxproj-to-cmake/model"
)

const (
	DefaultMinimumVersion = "3.20"
	DefaultStandard       = 14
)

// Writer converts a Project into CMakeLists.txt content.
type Writer struct {
	out io.Writer

	MinimumVersion  string // argument of cmake_minimum_required
	DefaultStandard int    // C++ standard used when LanguageStandard is unrecognized
}

// NewWriter creates a Writer that emits to w using the default settings.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		out:             w,
		MinimumVersion:  DefaultMinimumVersion,
		DefaultStandard: DefaultStandard,
	}
}

func (w *Writer) wr(s string) {
	fmt.Fprint(w.out, s)
}

// WriteProject emits the preamble, project, standard and target lines.
// Names and paths are written verbatim.
func (w *Writer) WriteProject(prj *model.Project) {
	w.wr("cmake_minimum_required(VERSION " + w.MinimumVersion + ")\n")
	w.wr("project(" + prj.Name + ")\n")
	w.wr("set(" + Standard(prj.Version, w.DefaultStandard) + ")\n")
	w.writeTarget(prj)
}

func (w *Writer) writeTarget(prj *model.Project) {
	if prj.IsLibrary() {
		w.wr("add_library(" + prj.Name)
	} else {
		w.wr("add_executable(" + prj.Name)
	}
	if prj.IsWindowed() {
		w.wr(" WIN32")
	}
	if prj.IsLibrary() {
		if prj.IsStatic() {
			w.wr(" STATIC")
		} else {
			w.wr(" SHARED")
		}
	}
	w.wr(" " + files(prj.Source) + ")\n")
}

// files joins paths, each one followed by a space.
func files(src []string) string {
	sb := strings.Builder{}
	for _, fn := range src {
		sb.WriteString(fn)
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Render returns the CMakeLists.txt content for prj with default settings.
func Render(prj *model.Project) string {
	sb := strings.Builder{}
	NewWriter(&sb).WriteProject(prj)
	return sb.String()
}

// Standard maps an MSBuild LanguageStandard value (stdcpp17, stdc11, ...)
// to the body of a CMake set() call. stdcpp is tested before stdc.
func Standard(version string, dflt int) string {
	switch {
	case strings.Contains(version, "stdcpp"):
		return "CMAKE_CXX_STANDARD " + strconv.Itoa(ExtractDigits(version))
	case strings.Contains(version, "stdc"):
		return "CMAKE_C_STANDARD " + strconv.Itoa(ExtractDigits(version))
	default:
		return "CMAKE_CXX_STANDARD " + strconv.Itoa(dflt)
	}
}

// ExtractDigits concatenates the decimal digits of s and parses them.
// It returns 0 when s has no digits or the number does not fit an int.
func ExtractDigits(s string) int {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			digits = append(digits, c)
		}
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
