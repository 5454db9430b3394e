package otp

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStoreIssueVerifyConsume(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute, time.Minute)

	code, err := s.Issue("a@b.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	t.Run("correct code verifies", func(t *testing.T) {
		require.True(t, s.Verify("a@b.com", code))
	})

	t.Run("verify does not consume", func(t *testing.T) {
		require.True(t, s.Verify("a@b.com", code))
		require.True(t, s.Verify("a@b.com", code))
	})

	t.Run("wrong code fails", func(t *testing.T) {
		require.False(t, s.Verify("a@b.com", "000000"))
	})

	t.Run("unknown email fails", func(t *testing.T) {
		require.False(t, s.Verify("nobody@b.com", code))
	})

	t.Run("consume removes the entry", func(t *testing.T) {
		s.Consume("a@b.com")
		require.False(t, s.Verify("a@b.com", code))
	})
}

func TestStoreReissueInvalidatesOldCode(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute, time.Minute)

	first, err := s.Issue("a@b.com")
	require.NoError(t, err)

	second, err := s.Issue("a@b.com")
	require.NoError(t, err)

	if first == second {
		t.Skip("collision between independently generated codes")
	}

	require.False(t, s.Verify("a@b.com", first))
	require.True(t, s.Verify("a@b.com", second))
}

func TestStoreExpiry(t *testing.T) {
	t.Parallel()

	s := NewStore(20*time.Millisecond, time.Hour)

	code, err := s.Issue("a@b.com")
	require.NoError(t, err)
	require.True(t, s.Verify("a@b.com", code))

	time.Sleep(40 * time.Millisecond)

	require.False(t, s.Verify("a@b.com", code))
	require.False(t, s.VerifyAndConsume("a@b.com", code))
}

func TestVerifyAndConsumeIsOneTime(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute, time.Minute)

	code, err := s.Issue("a@b.com")
	require.NoError(t, err)

	require.True(t, s.VerifyAndConsume("a@b.com", code))
	require.False(t, s.VerifyAndConsume("a@b.com", code))
	require.False(t, s.Verify("a@b.com", code))
}

func TestVerifyAndConsumeSingleWinnerUnderContention(t *testing.T) {
	t.Parallel()

	s := NewStore(time.Minute, time.Minute)

	code, err := s.Issue("a@b.com")
	require.NoError(t, err)

	const callers = 32

	var wg sync.WaitGroup
	results := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- s.VerifyAndConsume("a@b.com", code)
		}()
	}

	wg.Wait()
	close(results)

	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}

	require.Equal(t, 1, wins)
}

func TestGenerateCodeRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}
