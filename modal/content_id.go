package modal

import (
	"strconv"
	"strings"
)

// ContentIDGenerator hands out content ids for new translatable content.
type ContentIDGenerator interface {
	NextID(existing []string, componentName string) string
}

// SequentialContentIDs numbers ids per component: "feedback_1", "feedback_2", ...
type SequentialContentIDs struct{}

// NextID returns componentName_<n+1>, n being the highest number already used.
func (SequentialContentIDs) NextID(existing []string, componentName string) string {
	prefix := componentName + "_"
	highest := 0

	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		n, err := strconv.Atoi(id[strings.LastIndexByte(id, '_')+1:])
		if err == nil && n > highest {
			highest = n
		}
	}

	return prefix + strconv.Itoa(highest+1)
}
