package service

import (
	"cmp"
	"slices"
	"strings"

	"dailytodo/internal/model"
)

// unranked places tasks without a priority after C.
const unranked = 3

func priorityRank(p *model.Priority) int {
	if p == nil {
		return unranked
	}
	switch *p {
	case model.PriorityA:
		return 0
	case model.PriorityB:
		return 1
	case model.PriorityC:
		return 2
	}
	return unranked
}

// compareScheduledTime orders set times lexicographically; an unset time sorts last.
func compareScheduledTime(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return strings.Compare(*a, *b)
}

func compareTasks(a, b model.Task) int {
	if c := cmp.Compare(priorityRank(a.Priority), priorityRank(b.Priority)); c != 0 {
		return c
	}
	return compareScheduledTime(a.ScheduledTime, b.ScheduledTime)
}

// SortTasks returns a copy of tasks in display order: priority A, B, C, then none;
// ties broken by scheduled time. The sort is stable, so equal tasks keep their
// stored order and the same input always yields the same output.
func SortTasks(tasks []model.Task) []model.Task {
	sorted := slices.Clone(tasks)
	if sorted == nil {
		sorted = []model.Task{}
	}
	slices.SortStableFunc(sorted, compareTasks)
	return sorted
}
