package keylock

import (
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocker_SerializesSameKey(t *testing.T) {
	t.Parallel()

	locker := New()
	key := solana.NewWallet().PublicKey()

	const workers = 32
	counter := 0
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(key)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
	assert.Zero(t, locker.Len())
}

func TestLocker_IndependentKeys(t *testing.T) {
	t.Parallel()

	locker := New()
	unlockA := locker.Lock(solana.NewWallet().PublicKey())
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock(solana.NewWallet().PublicKey())
		unlockB()
		close(done)
	}()
	<-done

	require.Equal(t, 1, locker.Len())
}

func TestLocker_UnlockIsIdempotent(t *testing.T) {
	t.Parallel()

	locker := New()
	key := solana.NewWallet().PublicKey()

	unlock := locker.Lock(key)
	unlock()
	unlock()

	relock := locker.Lock(key)
	relock()
	assert.Zero(t, locker.Len())
}
