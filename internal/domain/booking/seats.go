package booking

import "sort"

// SeatAvailability splits the fixed seat range at one instant into the seats
// held by active bookings and the rest. The two sets are disjoint and their
// union is always 1..seatCount.
type SeatAvailability struct {
	Available []int `json:"available"`
	Booked    []int `json:"booked"`
}

func ComputeAvailability(seatCount int, bookedSeats []int) SeatAvailability {
	taken := make(map[int]bool, len(bookedSeats))
	for _, s := range bookedSeats {
		if s >= 1 && s <= seatCount {
			taken[s] = true
		}
	}

	out := SeatAvailability{
		Available: make([]int, 0, seatCount),
		Booked:    make([]int, 0, len(taken)),
	}
	for seat := 1; seat <= seatCount; seat++ {
		if taken[seat] {
			out.Booked = append(out.Booked, seat)
		} else {
			out.Available = append(out.Available, seat)
		}
	}

	sort.Ints(out.Booked)
	return out
}
