// SPDX-License-Identifier: MIT
// File: attrview/example_test.go
package attrview_test

import (
	"fmt"

	"github.com/katalvlaran/sala/attrtable"
	"github.com/katalvlaran/sala/attrview"
)

// ExampleView lists rows in display-column order.
func ExampleView() {
	tbl := attrtable.NewOrderedTable[string](attrtable.WithColumns("Mean Depth"))
	for key, v := range map[string]float32{"hall": 2.5, "lobby": 1.25, "attic": 4} {
		row, _ := tbl.AddRow(key)
		_ = row.SetValue("Mean Depth", v)
	}

	v := attrview.NewView(tbl)
	_ = v.SetDisplayColumn(0)
	for _, it := range v.Index() {
		fmt.Println(it.Key, it.Value)
	}

	// Output:
	// lobby 1.25
	// hall 2.5
	// attic 4
}
