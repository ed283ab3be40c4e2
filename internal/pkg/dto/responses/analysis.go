package responses

import "protrack-service/internal/pkg/protodto"

type AnalysisResult struct {
	Rows []protodto.AnalysisRow `json:"rows"`
}

type AnalysisExport struct {
	Bucket     string `json:"bucket"`
	ObjectName string `json:"object_name"`
	RowCount   int    `json:"row_count"`
}
