package app

import "github.com/LushWare-Org/Travel-Agency-Management-System-sub004/internal/domain"

// reconcile resizes an ordered roster to target slots without disturbing
// already-entered data: growth appends blanks from the factory, shrinkage
// truncates from the end. Entries are never reordered or merged.
func reconcile[T any](roster []T, target int, blank func() T) []T {
	if target < 0 {
		target = 0
	}
	if target == len(roster) {
		return roster
	}
	if target < len(roster) {
		return roster[:target]
	}
	out := append([]T{}, roster...)
	for len(out) < target {
		out = append(out, blank())
	}
	return out
}

// ReconcileAdults keeps the adult roster in lockstep with the adult count.
func ReconcileAdults(roster []domain.PassengerRecord, target int) []domain.PassengerRecord {
	return reconcile(roster, target, func() domain.PassengerRecord {
		return domain.PassengerRecord{}
	})
}

// ReconcileChildren keeps the child roster and the parallel age sequence in
// lockstep with the child count. New slots default to age 0.
func ReconcileChildren(roster []domain.ChildPassengerRecord, ages []int, target int) ([]domain.ChildPassengerRecord, []int) {
	newRoster := reconcile(roster, target, func() domain.ChildPassengerRecord {
		return domain.ChildPassengerRecord{}
	})
	newAges := reconcile(ages, target, func() int { return 0 })
	return newRoster, newAges
}
