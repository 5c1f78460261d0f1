package tagscan

import (
	"github.com/simonhull/tagscan/internal/types"
)

// AudioInfo is an alias to types.AudioInfo.
// Re-exporting from internal/types to maintain public API.
type AudioInfo = types.AudioInfo
