package workspace

// Object types returned by the workspace list API.
const (
	ObjectTypeNotebook  = "NOTEBOOK"
	ObjectTypeDirectory = "DIRECTORY"
)

// ObjectInfo describes a single entry in the workspace tree.
type ObjectInfo struct {
	Path       string `json:"path"`
	ObjectType string `json:"object_type"`
}

// ClusterInfo describes a compute cluster as reported by the clusters API.
type ClusterInfo struct {
	ClusterName string `json:"cluster_name"`
	State       string `json:"state"`
}

type statusResponse struct {
	Path       string `json:"path"`
	ObjectType string `json:"object_type"`
}

type listResponse struct {
	Objects []ObjectInfo `json:"objects"`
}

type clustersResponse struct {
	Clusters []ClusterInfo `json:"clusters"`
}
