package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationScopeIsBound(t *testing.T) {
	assert.False(t, ConfigurationScope{ID: "sln"}.IsBound())
	assert.False(t, ConfigurationScope{ID: "sln", ConnectionID: "sq|http://localhost"}.IsBound())
	assert.True(t, ConfigurationScope{ID: "sln", ConnectionID: "sq|http://localhost", SonarProjectID: "proj"}.IsBound())
}

func TestConnectionDescriptors(t *testing.T) {
	d := ConnectionDescriptors{
		SelfManaged: []SelfManagedConnectionDescriptor{{ConnectionID: "sq|a"}, {ConnectionID: "sq|b"}},
		Cloud:       []CloudConnectionDescriptor{{ConnectionID: "sc|org"}},
	}
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, []string{"sq|a", "sq|b", "sc|org"}, d.ConnectionIDs())
	assert.Empty(t, ConnectionDescriptors{}.ConnectionIDs())
}

func TestAnalysisLanguagesContains(t *testing.T) {
	languages := AnalysisLanguages{AnalysisLanguageJavascript, AnalysisLanguageCFamily}
	assert.True(t, languages.Contains(AnalysisLanguageCFamily))
	assert.False(t, languages.Contains(AnalysisLanguageRoslynFamily))
	assert.False(t, AnalysisLanguages(nil).Contains(AnalysisLanguageCFamily))
}
