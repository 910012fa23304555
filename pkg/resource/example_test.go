package resource_test

import (
	"fmt"
	"os"

	"github.com/mcelhennyi/boulangerie-milon/pkg/resource"
)

// Example builds a small kitchen bottom-up and dumps the containment tree.
func Example() {
	oven, _ := resource.NewQuantity(resource.TypeOven, 2, "racks")
	rack, _ := resource.NewSpatial(resource.TypeOvenRack, 24, 36, "inches", 0.5)
	sheet, _ := resource.NewSpatial(resource.TypeCookieSheet, 4, 4, "inches", 1.0)
	cookie, _ := resource.NewItem(2, 2, "Chocolate Chip Cookie", "inches")

	oven.AddChild(rack)
	rack.AddChild(sheet)
	sheet.AddChild(cookie)

	resource.Dump(os.Stdout, oven)
	// Output:
	// oven: 1 racks (capacity: 2 racks, utilization: 50.0%)
	//   oven_rack: 1 items (24x36 inches, grid: 0.5 inches, utilization: 1.9%)
	//     cookie_sheet: 1 items (4x4 inches, grid: 1 inches, utilization: 25.0%)
	//       Chocolate Chip Cookie: 2x2 inches
}

// ExampleSpatialResource_CanAddChild probes for space without mutating.
func ExampleSpatialResource_CanAddChild() {
	sheet, _ := resource.NewSpatial(resource.TypeCookieSheet, 4, 4, "inches", 1.0)
	big, _ := resource.NewItem(3, 3, "tray", "inches")
	small, _ := resource.NewItem(2, 2, "cookie", "inches")

	sheet.AddChild(small)
	sheet.AddChild(small) // second attach of the same child is refused

	fmt.Println(sheet.CanAddChild(big))
	fmt.Println(sheet.Utilization())
	// Output:
	// false
	// 0.25
}
