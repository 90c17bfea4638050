package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/eatonphil/sqlmatrix"
)

var inserts = 0
var lastId = 0
var firstId = 0

func doInsert(m *sqlmatrix.Matrix) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < inserts; i++ {
		lastId = r.Intn(inserts * 10)
		if i == 0 {
			firstId = lastId
		}

		_, err := m.AppendRow(sqlmatrix.RowOf(sqlmatrix.Integer(int64(lastId)), sqlmatrix.Integer(int64(i))))
		if err != nil {
			panic(err)
		}
	}
}

func doLookup(idx *sqlmatrix.Index, m *sqlmatrix.Matrix) {
	// equal ids come back in insertion order
	rows := idx.Lookup(sqlmatrix.Integer(int64(lastId)))
	if len(rows) == 0 {
		panic("Expected a row")
	}
	if inc, _ := m.At(rows[len(rows)-1], 1).AsInteger(); int(inc) != inserts-1 {
		panic(fmt.Sprintf("Bad row, got: %d", inc))
	}

	rows = idx.Lookup(sqlmatrix.Integer(int64(firstId)))
	if len(rows) == 0 {
		panic("Expected a row")
	}
	if inc, _ := m.At(rows[0], 1).AsInteger(); inc != 0 {
		panic(fmt.Sprintf("Bad row, got: %d", inc))
	}
}

func perf(name string, cb func()) {
	start := time.Now()
	fmt.Println("Starting", name)
	cb()
	fmt.Printf("Finished %s: %f seconds\n", name, time.Since(start).Seconds())

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Printf("Alloc = %d MiB\n\n", ms.Alloc/1024/1024)
}

func main() {
	inserts = 1000
	for i, arg := range os.Args {
		if arg == "--inserts" && i+1 < len(os.Args) {
			inserts, _ = strconv.Atoi(os.Args[i+1])
		}
	}
	if inserts < 1 {
		inserts = 1
	}

	m, err := sqlmatrix.New(2, sqlmatrix.WithName("users"), sqlmatrix.WithColumnNames("id", "inc"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("Inserting %d rows\n", inserts)
	perf("INSERT", func() { doInsert(m) })

	var idx *sqlmatrix.Index
	perf("CREATE INDEX", func() { idx = sqlmatrix.NewIndex(m, 0) })
	perf("LOOKUP", func() { doLookup(idx, m) })

	fmt.Printf("Capacity %d for %d rows\n", m.Capacity(), m.RowCount())
}
