package model

import (
	"cmp"
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

type unassignableError struct {
}

func (err unassignableError) Error() string {
	return "not all interviews can be assigned a room"
}

// AssignRooms gives every entry of schedule a room in 1..rooms so that overlapping interviews of the same day never
// share one. The result is indexed like schedule. Entries starting at the same minute are matched against the rooms
// left free by the interviews still running at that minute. An entry keeps its RoomIndex whenever that room is free
// and no other entry of its group is forced to take it
func AssignRooms(schedule []ScheduleEntry, rooms int) ([]int, error) {
	assignments := make([]int, len(schedule))

	//** Order entries by day and start
	order := lo.Range(len(schedule))
	slices.SortStableFunc(order, func(i, j int) int {
		if c := schedule[i].Day.Time().Compare(schedule[j].Day.Time()); c != 0 {
			return c
		}
		return cmp.Compare(schedule[i].StartMinute, schedule[j].StartMinute)
	})

	//** Assign rooms group by group
	for len(order) > 0 {
		first := schedule[order[0]]
		size := 1
		for size < len(order) && SameDay(schedule[order[size]].Day, first.Day) && schedule[order[size]].StartMinute == first.StartMinute {
			size++
		}
		group := order[:size]
		order = order[size:]

		// Rooms held by interviews already running when the group starts
		taken := make(map[int]bool)
		for index, entry := range schedule {
			if assignments[index] != 0 && SameDay(entry.Day, first.Day) &&
				entry.StartMinute < first.StartMinute && first.StartMinute < entry.EndMinute {
				taken[assignments[index]] = true
			}
		}
		free := lo.Filter(lo.RangeFrom(1, rooms), func(room int, _ int) bool { return !taken[room] })

		groupAssignments, err := matchRooms(schedule, group, free)
		if err != nil {
			return nil, err
		}
		for index, room := range groupAssignments {
			assignments[index] = room
		}
	}

	return assignments, nil
}

func matchRooms(schedule []ScheduleEntry, entries []int, rooms []int) (map[int]int, error) {
	if len(entries) > len(rooms) {
		return nil, unassignableError{}
	}

	// Free rooms that some entry of the group occupies as its RoomIndex
	preferred := make(map[int]bool)
	for _, entry := range entries {
		preferred[schedule[entry].RoomIndex] = true
	}

	// An entry may take its own RoomIndex or any free room nobody in the group asks for
	neighbors := func(entryAny any, roomAny any) (bool, error) {
		entry, room := entryAny.(int), roomAny.(int)
		return schedule[entry].RoomIndex == room || !preferred[room], nil
	}

	entriesAny, roomsAny := lo.Map(entries, func(entry int, _ int) any { return entry }), lo.Map(rooms, func(room int, _ int) any { return room })

	graph, err := bipartitegraph.NewBipartiteGraph(entriesAny, roomsAny, neighbors)
	if err != nil {
		return nil, err
	}

	matching := graph.LargestMatching()

	// Check the matching is a maximum one
	if len(matching) < len(entries) {
		return nil, unassignableError{}
	}

	assignments := make(map[int]int, len(entries))
	for _, edge := range matching {
		entryIndex, roomIndex := edge.Node1, edge.Node2-len(entries)
		assignments[entries[entryIndex]] = rooms[roomIndex]
	}
	return assignments, nil
}
