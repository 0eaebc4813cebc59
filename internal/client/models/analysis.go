package models

import "encoding/json"

// AnalysisResult carries the descriptive tags produced by the
// content-analysis service for one file. Malformed distinguishes "the
// backend reported no tags" from "the payload did not match the expected
// shape"; both yield empty Tags and neither is an error.
type AnalysisResult struct {
	Tags      []string
	Malformed bool
}

// analysisPayload mirrors the subset of the analysis document the client
// reads: analysis.tagsResult.values[].name.
type analysisPayload struct {
	TagsResult *struct {
		Values []struct {
			Name string `json:"name"`
		} `json:"values"`
	} `json:"tagsResult"`
}

// ParseAnalysis extracts tags from a raw analysis document. Empty or missing
// names are dropped. A document that cannot be decoded into the expected
// shape degrades to an empty, Malformed result rather than an error.
func ParseAnalysis(raw json.RawMessage) AnalysisResult {
	if len(raw) == 0 {
		return AnalysisResult{Tags: []string{}, Malformed: true}
	}

	var payload analysisPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return AnalysisResult{Tags: []string{}, Malformed: true}
	}

	tags := []string{}
	if payload.TagsResult != nil {
		for _, v := range payload.TagsResult.Values {
			if v.Name != "" {
				tags = append(tags, v.Name)
			}
		}
	}
	return AnalysisResult{Tags: tags}
}
