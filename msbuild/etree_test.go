package msbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0" encoding="utf-8"?>
<Project DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup Label="Globals">
    <RootNamespace>Demo</RootNamespace>
  </PropertyGroup>
  <!-- comment -->
  <ItemGroup>
    <ClCompile Include="main.cpp" />
  </ItemGroup>
</Project>`

func TestParseString(t *testing.T) {
	doc, err := ParseString(sample)
	require.NoError(t, err)

	prj := doc.Child("Project")
	require.False(t, Missing(prj))
	assert.Equal(t, "Project", prj.Name())
	assert.Equal(t, "Build", prj.Attr("DefaultTargets", ""))

	cc := prj.Children()
	require.Len(t, cc, 2)
	assert.Equal(t, "PropertyGroup", cc[0].Name())
	assert.Equal(t, "ItemGroup", cc[1].Name())
	assert.Equal(t, "Demo", cc[0].Child("RootNamespace").Text())
	assert.Equal(t, "main.cpp", cc[1].Child("ClCompile").Attr("Include", ""))
	assert.True(t, cc[1].Child("ClCompile").HasAttr("Include"))
	assert.False(t, cc[1].Child("ClCompile").HasAttr("Condition"))
}

func TestHasAttrEmptyValue(t *testing.T) {
	doc, err := ParseString(`<ItemGroup><ClCompile Include="" /></ItemGroup>`)
	require.NoError(t, err)

	item := doc.Child("ItemGroup").Child("ClCompile")
	assert.True(t, item.HasAttr("Include"))
	assert.Equal(t, "", item.Attr("Include", "dflt"))
	assert.False(t, doc.Child("ItemGroup").Child("None").HasAttr("Include"))
}

func TestMissingLookups(t *testing.T) {
	doc, err := ParseString(sample)
	require.NoError(t, err)

	n := doc.Child("Project").Child("ItemDefinitionGroup").Child("ClCompile").Child("LanguageStandard")
	assert.True(t, Missing(n))
	assert.Equal(t, "", n.Text())
	assert.Equal(t, "", n.Name())
	assert.Empty(t, n.Children())
	assert.Equal(t, "dflt", n.Attr("Label", "dflt"))

	g := doc.Child("Project").Child("PropertyGroup")
	assert.Equal(t, "", g.Attr("Condition", ""))
	assert.Equal(t, "x", g.Attr("Condition", "x"))
	assert.True(t, Missing(nil))
}

func TestParseNoRoot(t *testing.T) {
	_, err := ParseString("")
	assert.Error(t, err)

	_, err = ParseString("just text")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "demo.vcxproj")
	require.NoError(t, os.WriteFile(fn, []byte(sample), 0644))

	doc, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "Demo", doc.Child("Project").Child("PropertyGroup").Child("RootNamespace").Text())

	_, err = Load(filepath.Join(t.TempDir(), "missing.vcxproj"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.vcxproj")
	require.NoError(t, os.WriteFile(bad, []byte("just text"), 0644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
}
