package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func (I Index) Contains(val int) bool {
	for _, ival := range I {
		if ival == val {
			return true
		}
	}
	return false
}

