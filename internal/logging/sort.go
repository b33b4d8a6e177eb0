package logging

// BySerialDesc sorts log messages newest first.
func BySerialDesc(i, j Message) int {
	switch {
	case i.Serial < j.Serial:
		return 1
	case i.Serial > j.Serial:
		return -1
	}
	return 0
}
