package util_test

import (
	"fmt"

	"github.com/kbukum/utilkit/util"
)

func ExampleFormatString() {
	fmt.Printf("%q\n", util.FormatString("  Hello World  ", &util.FormatOptions{Trim: true, Lowercase: true}))
	fmt.Printf("%q\n", util.FormatString("  Hello World  ", nil))
	// Output:
	// "hello world"
	// "  Hello World  "
}

func ExampleParseJSON() {
	type user struct {
		Name string `json:"name"`
	}
	if u := util.ParseJSON[user](`{"name":"ada"}`); u != nil {
		fmt.Println(u.Name)
	}
	fmt.Println(util.ParseJSON[user]("not json") == nil)
	fmt.Println(util.ParseJSON[user]("null") == nil)
	// Output:
	// ada
	// true
	// true
}
