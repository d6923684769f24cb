package heredity

// Choose k from n items can be done in this many ways. Originally derived from
// github.com/limix/bgen /src/util/choose.c
func Choose(n, k int) int {
	if n == 3 && k == 1 {
		// Fastest path, since this is the usual result
		return 3
	} else if k == 1 {
		return n
	}

	ans := 1

	if k > n-k {
		k = n - k
	}

	for j := 1; j <= k; j++ {
		if n%j == 0 {
			ans *= n / j
		} else if ans%j == 0 {
			ans = ans / j * n
		} else {
			ans = (ans * n) / j
		}

		n--
	}

	return ans
}

// NumWorlds returns how many candidate worlds a WorldReader will
// produce for this pedigree: the number of ways to partition the
// individuals into zero/one/two-copy buckets, times one trait subset
// per combination of unknown phenotypes.
func NumWorlds(ped *Pedigree) int {
	n := len(ped.Names)

	partitions := 0
	for one := 0; one <= n; one++ {
		for two := 0; two <= n-one; two++ {
			partitions += Choose(n, one) * Choose(n-one, two)
		}
	}

	unknown := 0
	for _, name := range ped.Names {
		if ped.Individuals[name].Trait == nil {
			unknown++
		}
	}

	return partitions * (1 << unknown)
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
