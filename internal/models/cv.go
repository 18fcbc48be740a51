package models

type CVAnalysis struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	JobTitle string `json:"jobTitle"`
}
