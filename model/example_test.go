// SPDX-License-Identifier: MIT

package model_test

import (
	"fmt"

	"github.com/katalvlaran/ratdom/model"
)

func ExampleStates() {
	fmt.Println(model.States(3))

	// Output:
	// [(3,0,0) (2,1,0) (1,2,0) (1,1,1) (0,3,0) (0,2,1)]
}
