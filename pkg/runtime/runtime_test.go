package runtime

import "testing"

func TestItWorks(t *testing.T) {
	if 2+2 != 4 {
		t.Fatal("arithmetic broke")
	}
}
