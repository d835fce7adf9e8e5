package urlcleaner_test

import (
	"fmt"

	"github.com/pfczx/urlcleaner"
)

func ExampleCleaner_Clean() {
	c := urlcleaner.NewCleaner("?xmt", "?utm_source")

	fmt.Println(c.Clean("xxx.com/?xmt=111"))
	fmt.Println(c.Clean("xxx.com/?utm_source=google&xmt=111"))
	fmt.Println(c.Clean("xxx.com/?other=111"))

	// Output:
	// xxx.com/
	// xxx.com/
	// xxx.com/?other=111/
}
