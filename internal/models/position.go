package models

// directions lists the eight principal directions as (row, column) steps.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// mobility returns a bitset with all cells where player can move.
// This code is adapted from Edax
func mobility(player, opponent uint64) uint64 {
	mask := opponent & 0x7E7E7E7E7E7E7E7E

	flipL := mask & (player << 1)
	flipL |= mask & (flipL << 1)
	maskL := mask & (mask << 1)
	flipL |= maskL & (flipL << (2 * 1))
	flipL |= maskL & (flipL << (2 * 1))
	flipR := mask & (player >> 1)
	flipR |= mask & (flipR >> 1)
	maskR := mask & (mask >> 1)
	flipR |= maskR & (flipR >> (2 * 1))
	flipR |= maskR & (flipR >> (2 * 1))
	movesSet := (flipL << 1) | (flipR >> 1)

	flipL = mask & (player << 7)
	flipL |= mask & (flipL << 7)
	maskL = mask & (mask << 7)
	flipL |= maskL & (flipL << (2 * 7))
	flipL |= maskL & (flipL << (2 * 7))
	flipR = mask & (player >> 7)
	flipR |= mask & (flipR >> 7)
	maskR = mask & (mask >> 7)
	flipR |= maskR & (flipR >> (2 * 7))
	flipR |= maskR & (flipR >> (2 * 7))
	movesSet |= (flipL << 7) | (flipR >> 7)

	flipL = mask & (player << 9)
	flipL |= mask & (flipL << 9)
	maskL = mask & (mask << 9)
	flipL |= maskL & (flipL << (2 * 9))
	flipL |= maskL & (flipL << (2 * 9))
	flipR = mask & (player >> 9)
	flipR |= mask & (flipR >> 9)
	maskR = mask & (mask >> 9)
	flipR |= maskR & (flipR >> (2 * 9))
	flipR |= maskR & (flipR >> (2 * 9))
	movesSet |= (flipL << 9) | (flipR >> 9)

	flipL = opponent & (player << 8)
	flipL |= opponent & (flipL << 8)
	maskL = opponent & (opponent << 8)
	flipL |= maskL & (flipL << (2 * 8))
	flipL |= maskL & (flipL << (2 * 8))
	flipR = opponent & (player >> 8)
	flipR |= opponent & (flipR >> 8)
	maskR = opponent & (opponent >> 8)
	flipR |= maskR & (flipR >> (2 * 8))
	flipR |= maskR & (flipR >> (2 * 8))
	movesSet |= (flipL << 8) | (flipR >> 8)

	movesSet &^= player | opponent
	return movesSet
}

// flipped returns the opponent discs that player captures by playing at target.
// Runs are listed direction by direction, nearest disc first. An occupied target captures nothing.
func flipped(player, opponent uint64, target Coordinate) []Coordinate {
	if (player|opponent)&target.bit() != 0 {
		return nil
	}

	var flips []Coordinate

	for _, dir := range directions {
		dRow, dCol := dir[0], dir[1]
		s := 1
		for {
			row := target.Row + dRow*s
			col := target.Col + dCol*s
			if !onBoard(row, col) {
				break
			}

			cur := Coordinate{Row: row, Col: col}

			if opponent&cur.bit() != 0 {
				s++
				continue
			}

			if player&cur.bit() != 0 && s >= 2 {
				for dist := 1; dist < s; dist++ {
					flips = append(flips, Coordinate{
						Row: target.Row + dRow*dist,
						Col: target.Col + dCol*dist,
					})
				}
			}
			break
		}
	}

	return flips
}

// maskOf returns the bitset of a list of coordinates.
func maskOf(coords []Coordinate) uint64 {
	mask := uint64(0)
	for _, c := range coords {
		mask |= c.bit()
	}
	return mask
}
