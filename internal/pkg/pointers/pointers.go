package pointers

func Int(v int) *int { return &v }
