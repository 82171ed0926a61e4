// pkg/api/trajectory_v1.go
package api

// StatusV1 is the stable JSON/JSONL schema for one trajectory snapshot.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StatusV1 struct {
	Start    uint64 `json:"start"`
	Finished bool   `json:"finished"`
	Highest  uint64 `json:"highest"`
	Value    uint64 `json:"value"`
	N        uint64 `json:"n"`
	Width    int    `json:"width,omitempty"` // integer width the trajectory was computed in
}
