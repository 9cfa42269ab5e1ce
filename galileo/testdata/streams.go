package testdata

// CompleteEphemerisStream returns a stream of SFRBX frames carrying word
// types 1-6 and 10 for satellite 11: everything needed for the header
// block and one complete navigation record.  The field values are chosen
// so that the expected engineering values are easy to state in a test -
// see the handler tests for the expectations.
func CompleteEphemerisStream() []byte {

	frames := [][]Field{
		// Word type 1: IOD 52, t0e 600 minutes, M0 -1, e 10, sqrt(A) 20.
		{
			{Value: 52, Width: 10}, {Value: 600, Width: 14},
			{Value: 0xffffffff, Width: 32}, {Value: 10, Width: 32},
			{Value: 20, Width: 32},
		},
		// Word type 2: omega0 1, i0 -1, perigee 2, i-dot 3.
		{
			{Value: 52, Width: 10},
			{Value: 0, Width: 14}, {Value: 1, Width: 18},
			{Value: 0x3fff, Width: 14}, {Value: 0x3ffff, Width: 18},
			{Value: 0, Width: 14}, {Value: 2, Width: 18},
			{Value: 3, Width: 14},
		},
		// Word type 3: omega-dot -2, delta-n 5, Cuc 6, Cus 7, Crc 8,
		// Crs 9, SISA 107.
		{
			{Value: 52, Width: 10},
			{Value: 0x3fff, Width: 14}, {Value: 0x3fe, Width: 10},
			{Value: 5, Width: 16},
			{Value: 0, Width: 6}, {Value: 6, Width: 10},
			{Value: 7, Width: 16},
			{Value: 0, Width: 6}, {Value: 8, Width: 10},
			{Value: 9, Width: 16},
			{Value: 107, Width: 8},
		},
		// Word type 4: Cic 1, Cis 2, t0c 780 minutes, af0 -3, af1 4,
		// af2 -1.
		{
			{Value: 52, Width: 10}, {Value: 11, Width: 6},
			{Value: 0, Width: 8}, {Value: 1, Width: 8},
			{Value: 2, Width: 16},
			{Value: 12, Width: 8}, {Value: 12, Width: 6},
			{Value: 0x3ffffff, Width: 26}, {Value: 0x1d, Width: 5},
			{Value: 4, Width: 21}, {Value: 0x3f, Width: 6},
		},
		// Word type 5: ai0 40, ai1 -2, ai2 5, BGDs 3 and -4, E5bHS 1,
		// E5bDVS 1, WN 1145, TOW 86400.
		{
			{Value: 40, Width: 11}, {Value: 0x7fe, Width: 11},
			{Value: 0, Width: 2}, {Value: 5, Width: 12},
			{Value: 0, Width: 1}, {Value: 0, Width: 1}, {Value: 0, Width: 1},
			{Value: 0, Width: 1}, {Value: 0, Width: 1},
			{Value: 3, Width: 10},
			{Value: 0x1f, Width: 5}, {Value: 28, Width: 5},
			{Value: 1, Width: 2}, {Value: 0, Width: 2},
			{Value: 1, Width: 1}, {Value: 0, Width: 1},
			{Value: 1145, Width: 12},
			{Value: 42, Width: 9}, {Value: 384, Width: 11},
		},
		// Word type 6: A0 100, A1 -6, t0t 10 hours, WN0t 95.
		{
			{Value: 0, Width: 24}, {Value: 100, Width: 8},
			{Value: 0xfffffa, Width: 24},
			{Value: 18, Width: 8}, {Value: 10, Width: 8},
			{Value: 95, Width: 8}, {Value: 96, Width: 8},
			{Value: 3, Width: 3}, {Value: 18, Width: 8},
			{Value: 86405, Width: 20},
		},
		// Word type 10: A0G -7, A1G 8, t0G 2 hours, WN0G 21.
		{
			{Value: 9, Width: 4}, {Value: 11, Width: 16},
			{Value: 0, Width: 4}, {Value: 13, Width: 7},
			{Value: 14, Width: 16},
			{Value: 0x1ff, Width: 9}, {Value: 123, Width: 7},
			{Value: 6, Width: 13},
			{Value: 0, Width: 2}, {Value: 0, Width: 2},
			{Value: 0xff, Width: 8}, {Value: 249, Width: 8},
			{Value: 8, Width: 12}, {Value: 2, Width: 8},
			{Value: 21, Width: 6},
		},
	}

	wordTypes := []uint{1, 2, 3, 4, 5, 6, 10}

	var data []byte
	for i, fields := range frames {
		payload := Payload(11, 1, 0, wordTypes[i], fields)
		data = append(data, SFRBXFrame(payload)...)
	}

	return data
}
