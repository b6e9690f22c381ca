// Package recarray provides fixed-length contiguous arrays composed from
// heterogeneous building blocks, with zero runtime overhead beyond the
// elements themselves.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// # Architecture Overview
//
//	recarray/          Variant family, composition and conversion operations
//	├── api/           View contract (api.Array) and error taxonomy
//	├── internal/      Centralized unsafe reinterpretation (internal/layout)
//	├── arena/         mmap-backed off-heap regions viewable as recursive arrays
//	├── pool/          Reuse of large composite scratch values
//	├── benchmarks/    Hot-path view/convert benchmarks
//	└── examples/      Runnable walkthroughs
//
// # The capability
//
// Five variant types form a closed family. Each guarantees that its value
// occupies exactly Len() contiguous elements of T, element i at byte offset
// i*sizeof(T):
//
//   - Empty[T]        length 0, zero-sized
//   - Single[T]       length 1, owns one T
//   - Concat[T, A, B] operand A immediately followed by operand B
//   - Repeat[T, A, N] N contiguous copies of operand A
//   - Wrap[T, A]      transparent wrapper of a native [N]T
//
// Length is a property of the type, never stored in the value. Composition
// (PushBack, AppendFront, ...) therefore builds new, longer types rather than
// mutating values. The Operand constraint is sealed: the layout guarantee is
// an unsafe obligation that cannot be taken on outside this package.
//
// # Quick Start
//
//	arr := recarray.Of3(10, 20, 30)
//	fmt.Println(arr.Slice()) // [10 20 30]
//
//	more := recarray.PushBack(arr, 40)
//	native, err := recarray.ToArray[[4]int, int](more)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(native) // [10 20 30 40]
package recarray
