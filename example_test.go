package rawvec_test

import (
	"encoding/binary"
	"fmt"

	"github.com/rawvec/rawvec"
)

func ExampleNew() {
	v, err := rawvec.New(4, rawvec.WithCapacity(8))
	if err != nil {
		panic(err)
	}
	defer v.Destroy()

	elem := make([]byte, 4)
	for i := uint32(1); i <= 3; i++ {
		binary.LittleEndian.PutUint32(elem, i*10)
		if err := v.Push(elem); err != nil {
			panic(err)
		}
	}

	first, _ := v.At(0)
	fmt.Println(v.Size(), binary.LittleEndian.Uint32(first))
	// Output: 3 10
}

func ExampleNewFixed() {
	// A stack buffer backs the vector; it never allocates.
	buf := make([]byte, 2*4)
	v, err := rawvec.NewFixed(2, buf)
	if err != nil {
		panic(err)
	}

	_ = v.Push([]byte{1, 2})
	_ = v.Push([]byte{3, 4})
	_ = v.Push([]byte{5, 6})
	_ = v.Push([]byte{7, 8})

	err = v.Push([]byte{9, 10})
	fmt.Println(v.Size(), err != nil)
	// Output: 4 true
}

func ExampleVector_BinarySearch() {
	v, _ := rawvec.New(1)
	defer v.Destroy()

	cmp := func(a, b []byte) int { return int(a[0]) - int(b[0]) }

	for _, b := range []byte{10, 30, 30, 50} {
		_ = v.Push([]byte{b})
	}

	idx, found, _ := v.BinarySearch([]byte{30}, cmp)
	fmt.Println(idx, found)

	idx, found, _ = v.BinarySearch([]byte{40}, cmp)
	fmt.Println(idx, found)
	// Output:
	// 1 true
	// 3 false
}

func ExampleNewTyped() {
	v, _ := rawvec.NewTyped[string]()

	v.Push("ferrum")
	v.Push("aurum")
	_ = v.Insert(1, "argentum")

	fmt.Println(v.Slice())
	// Output: [ferrum argentum aurum]
}
