package bucketlist_test

import (
	"fmt"

	bucketlist "github.com/joeycumines/bucketlist"
	"github.com/joeycumines/bucketlist/pointer"
)

func ExampleList() {
	l := bucketlist.ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	l2 := l.Cons(0)
	fmt.Println(l)
	fmt.Println(l2)
	// Output:
	// [1 2 3]
	// [0 1 2 3]
}

func ExampleList_PushBack() {
	l := bucketlist.NewList[string, pointer.Local](bucketlist.WithBucketSize(2))
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	fmt.Println(l)
	// Output:
	// [a b c]
}

func ExampleList_Close() {
	l := bucketlist.ListFromSlice[int, pointer.Local]([]int{1, 2, 3})
	l.OnDrop = func(v int) { fmt.Println("dropped", v) }
	l.Close()
	// Output:
	// dropped 1
	// dropped 2
	// dropped 3
}
