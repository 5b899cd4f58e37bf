package collection_test

import (
	"fmt"

	"github.com/ARM-software/golang-closures/collection"
)

func ExampleFold() {
	numbers := []int{10, 20, 30}
	sum, _ := collection.Fold(numbers, func(runningTotal, next int) int {
		return runningTotal + next
	})
	multiplied, _ := collection.Fold(numbers, collection.Multiply[int])
	_, err := collection.Fold([]int{}, collection.Add[int])
	fmt.Println(sum, multiplied)
	fmt.Println(err)
	// Output:
	// 60 6000
	// empty sequence: cannot fold a sequence without any element
}

func ExampleReduce() {
	lyrics := []string{"shake", "it", "off"}
	length := collection.Reduce(lyrics, 0, func(total int, word string) int {
		return total + len(word)
	})
	fmt.Println(length)
	// Output: 10
}
