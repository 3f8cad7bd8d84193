// Package sarif defines the subset of SARIF 2.1.0 that i18nscan emits.
// https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
package sarif

const (
	Schema  = "https://json.schemastore.org/sarif-2.1.0.json"
	Version = "2.1.0"

	LevelWarning = "warning"
)

// Log represents the top-level SARIF log object.
type Log struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// NewLog returns a log with a single run.
func NewLog(driver Driver, results []Result) *Log {
	if results == nil {
		results = []Result{}
	}
	return &Log{
		Schema:  Schema,
		Version: Version,
		Runs: []Run{
			{
				Tool:    Tool{Driver: driver},
				Results: results,
			},
		},
	}
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name           string `json:"name"`
	InformationURI string `json:"informationUri,omitempty"`
	Version        string `json:"version,omitempty"`
	Rules          []Rule `json:"rules,omitempty"`
}

type Rule struct {
	ID                   string               `json:"id"`
	ShortDescription     Message              `json:"shortDescription"`
	DefaultConfiguration *ReportingDescriptor `json:"defaultConfiguration,omitempty"`
}

// ReportingDescriptor is the default configuration of a rule.
type ReportingDescriptor struct {
	Level string `json:"level"`
}

type Result struct {
	RuleID     string            `json:"ruleId"`
	Level      string            `json:"level"`
	Message    Message           `json:"message"`
	Locations  []Location        `json:"locations"`
	Properties map[string]string `json:"properties,omitempty"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
	// URIBaseID refers to originalUriBaseIds, e.g. "SRCROOT".
	URIBaseID string `json:"uriBaseId,omitempty"`
}

type Region struct {
	StartLine int      `json:"startLine"`
	Snippet   *Snippet `json:"snippet,omitempty"`
}

type Snippet struct {
	Text string `json:"text"`
}
