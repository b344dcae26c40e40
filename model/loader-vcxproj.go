package model

import (
	"log"

	"github.com/repo-archive-X-rays5/vcxproj-to-cmake/msbuild"
)

// Load reads and extracts the project at fn. Unreadable or malformed
// input is not an error: the result is an empty project.
func Load(fn string) *Project {
	log.Printf("loading project from %s\n", fn)
	doc, err := msbuild.Load(fn)
	if err != nil {
		log.Printf("[warning] %v\n", err)
		return &Project{}
	}
	return Extract(doc)
}

// Extract builds a Project from the direct children of the document's
// Project element.
//
// Some quirks are kept on purpose: when several conditioned
// ItemDefinitionGroups exist the last one wins; every child of a source
// ItemGroup that has an Include attribute is taken as a source, whatever
// its tag, even when the attribute is empty. A document without a Globals
// group is named UnnamedProject.
func Extract(doc msbuild.Node) *Project {
	prj := &Project{Name: UnnamedProject}
	for _, c := range doc.Child("Project").Children() {
		switch c.Name() {
		case "PropertyGroup":
			switch c.Attr("Label", "") {
			case "Configuration":
				prj.Type = c.Child("ConfigurationType").Text()
			case "Globals":
				prj.Name = resolveName(c)
			}

		case "ItemDefinitionGroup":
			if c.Attr("Condition", "") == "" {
				continue
			}
			prj.Version = c.Child("ClCompile").Child("LanguageStandard").Text()
			prj.Subsystem = c.Child("Link").Child("SubSystem").Text()

		case "ItemGroup":
			if msbuild.Missing(c.Child("ClCompile")) && msbuild.Missing(c.Child("ClInclude")) {
				continue
			}
			for _, item := range c.Children() {
				if !item.HasAttr("Include") {
					continue
				}
				prj.Source = append(prj.Source, NormalizePath(item.Attr("Include", "")))
			}
		}
	}
	return prj
}

func resolveName(globals msbuild.Node) string {
	if s := globals.Child("RootNamespace").Text(); s != "" {
		return s
	}
	if s := globals.Child("ProjectName").Text(); s != "" {
		return s
	}
	return UnnamedProject
}
