package challenge

import (
	"context"
	"time"

	"git.gammaspectra.live/P2Pool/challenge/types"
	"git.gammaspectra.live/P2Pool/challenge/utils"
)

// Triad Input of a single challenge hash
type Triad struct {
	Nonce     types.Hash `json:"nonce"`
	PublicKey types.Hash `json:"public_key"`
	Digest    types.Hash `json:"digest"`
}

// Bytes the 96-byte message being hashed
func (t *Triad) Bytes() []byte {
	buf := make([]byte, 0, MessageSize)
	buf = append(buf, t.Nonce[:]...)
	buf = append(buf, t.PublicKey[:]...)
	buf = append(buf, t.Digest[:]...)
	return buf
}

func (t *Triad) Hash() types.Hash512 {
	return Hash(t.Nonce, t.PublicKey, t.Digest)
}

// HashBatch hashes all triads over routines goroutines, see utils.SplitWork. Results are in input order
func HashBatch(triads []Triad, routines int) []types.Hash512 {
	// only fails on cancellation
	results, _ := HashBatchContext(context.Background(), triads, routines)
	return results
}

// HashBatchContext as HashBatch, returns ctx error if cancelled before all triads were hashed
func HashBatchContext(ctx context.Context, triads []Triad, routines int) ([]types.Hash512, error) {
	results := make([]types.Hash512, len(triads))

	var usedRoutines int
	start := time.Now()

	err := utils.SplitWorkContext(ctx, routines, uint64(len(triads)), func(workIndex uint64, routineIndex int) error {
		results[workIndex] = triads[workIndex].Hash()
		return nil
	}, func(routines, routineIndex int) error {
		usedRoutines = routines
		return nil
	})
	if err != nil {
		return nil, err
	}

	if utils.IsLogLevelDebug() {
		utils.Debugf("Challenge", "hashed %d triads with %d routines in %s", len(triads), usedRoutines, time.Since(start))
	}

	return results, nil
}
