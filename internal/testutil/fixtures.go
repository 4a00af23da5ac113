package testutil

import (
	"bytes"
	"encoding/base64"

	"github.com/joshuapare/sdbkit/pkg/types"
)

// AllTagTypes returns a database that exercises every tag type, unnamed
// codes, empty lists and the annotated tags. Its layout reproduces the
// tag ids of the reference "all_tagtypes.sdb": DATABASE at 12, the nested
// empty DATABASE at 78, INCLUDE at 84, NAME at 138 and LIBRARY at 144.
func AllTagTypes() []byte {
	exeID, _ := base64.StdEncoding.DecodeString("iHdmVSIRIhERIjNEVWZ3iA==")
	return Build(3, 0,
		List(0x7001,
			List(0x7000),
			Null(0x1000),
			Byte(0x2000, 0xff),
			Word(0x3000, 0xffff),
			DWord(0x4000, 0xffffffff),
			QWord(0x5000, 0xffffffffffffffff),
			Binary(0x9000, bytes.Repeat([]byte{0xff}, 8)),
			String(0x8000, ""),
			StringRef(0x6000, 0),
			List(0x7001),
			Null(0x1001),
			Byte(0x2001, 0),
			Word(0x3001, 0),
			DWord(0x4001, 0),
			QWord(0x5002, 0),
			Binary(0x9001, make([]byte, 8)),
			String(0x8001, "val"),
			StringRef(0x6001, 0),
			List(0x7002,
				Word(0x3802, 0x3802),
				Word(0x3803, 0x3803),
				DWord(0x4016, 3),
				DWord(0x4023, 0x11),
				DWord(0x4021, 0x22),
			),
			List(0x7005,
				List(0x7006,
					List(0x7007,
						DWord(0x401D, 0),
						DWord(0x401E, 1),
						DWord(0x4033, 69922),
					),
					QWord(0x5001, 0),
					QWord(0x5001, 131560831927601799),
					Binary(0x9004, nil),
					Binary(0x9004, exeID),
				),
			),
		),
	)
}

// AppDatabase returns a small database with a string table, described and
// identified the way compiled shim databases are.
func AppDatabase() []byte {
	id, _ := base64.StdEncoding.DecodeString("KUWWg9YNQk6ykb/Q+qdH6Q==")
	table := List(0x7801,
		String(0x8801, "app_x32"),
		String(0x8801, "notepad.exe"),
	)
	// String refs are relative to the STRINGTABLE tag: the first item sits
	// right after its 6-byte list header.
	first := uint32(6)
	second := first + uint32(len(appendNode(nil, table.Children[0])))
	return Build(2, 3,
		List(0x7001,
			StringRef(0x6001, first),
			Binary(0x9007, id),
			DWord(0x4017, 0x10000001),
			DWord(0x4021, 4),
			List(0x7006,
				StringRef(0x6006, first),
				List(0x7007,
					StringRef(0x6001, second),
					Binary(0x9004, id),
				),
			),
		),
		table,
	)
}

// AppDatabaseID is the DATABASE_ID stored by AppDatabase.
const AppDatabaseID = "83964529-0dd6-4e42-b291-bfd0faa747e9"

// Nest returns depth LIST tags nested inside each other.
func Nest(depth int) Node {
	n := List(0x7001)
	for i := 1; i < depth; i++ {
		n = List(0x7001, n)
	}
	return n
}

// Root is the id of the first top-level tag of any built database.
const Root types.TagID = 12
