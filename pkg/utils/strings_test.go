package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveAccents(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"build", "build"},
		{"café", "cafe"},
		{"São Paulo", "Sao Paulo"},
		{"résumé", "resume"},
		{"naïve", "naive"},
	}

	for _, test := range tests {
		result := RemoveAccents(test.input)
		if result != test.expected {
			t.Errorf("RemoveAccents(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToGoName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"project", "Project"},
		{"buildId", "BuildID"},
		{"testCaseIds", "TestCaseIDs"},
		{"definitionUrl", "DefinitionURL"},
		{"repositoryUri", "RepositoryURI"},
		{"includeHtml", "IncludeHTML"},
		{"$top", "Top"},
		{"$skipToken", "SkipToken"},
		{"continuationToken", "ContinuationToken"},
		{"minFinishTime", "MinFinishTime"},
		{"resultsByOutcome", "ResultsByOutcome"},
		{"api-version", "APIVersion"},
		{"identity", "Identity"},
	}

	for _, test := range tests {
		result := ToGoName(test.input)
		if result != test.expected {
			t.Errorf("ToGoName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Gets a build", "gets a build"},
		{"URL of the badge", "URL of the badge"},
		{"a", "a"},
		{"A", "a"},
		{"Éclair", "éclair"},
	}

	for _, test := range tests {
		result := LowerFirst(test.input)
		if result != test.expected {
			t.Errorf("LowerFirst(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"build", "Build"},
		{"buildDefinition", "BuildDefinition"},
		{"build-definition", "BuildDefinition"},
		{"build_definition", "BuildDefinition"},
		{"build definition", "BuildDefinition"},
		{"BUILD_DEFINITION", "BuildDefinition"},
		{"XMLHttpRequest", "XmlhttpRequest"},
	}

	for _, test := range tests {
		result := ToPascalCase(test.input)
		if result != test.expected {
			t.Errorf("ToPascalCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"Build", "build"},
		{"test-results", "testResults"},
		{"code_coverage", "codeCoverage"},
		{"GetTestResultByID", "getTestResultById"},
	}

	for _, test := range tests {
		result := ToCamelCase(test.input)
		if result != test.expected {
			t.Errorf("ToCamelCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"buildDefinition", "build-definition"},
		{"test_results", "test-results"},
		{"Code Coverage", "code-coverage"},
		{"ExtensionManagement", "extension-management"},
	}

	for _, test := range tests {
		result := ToKebabCase(test.input)
		if result != test.expected {
			t.Errorf("ToKebabCase(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"  ", nil},
		{"buildId", []string{"build", "Id"}},
		{"$top", []string{"top"}},
		{"test-case_results", []string{"test", "case", "results"}},
		{"testCaseIds", []string{"test", "Case", "Ids"}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			if diff := cmp.Diff(test.expected, SplitWords(test.input)); diff != "" {
				t.Errorf("SplitWords(%q) mismatch (-want +got):\n%s", test.input, diff)
			}
		})
	}
}
