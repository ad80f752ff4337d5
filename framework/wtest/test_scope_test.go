package wtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestScopeInheritsConfiguration(t *testing.T) {
	myContextValue := "hi"
	config := TestConfiguration{
		Context: myContextValue,
	}
	_ = Run(config, func(wt *T) {
		assert.Equal(t, myContextValue, wt.Context())

		wt.Run("subtest", func(wt1 *T) {
			assert.Equal(t, myContextValue, wt1.Context())
		})
	})
}

func TestTestScopeExitsImmediatelyOnFailNow(t *testing.T) {
	executed1 := false
	executed2 := false
	executed3 := false
	_ = Run(TestConfiguration{}, func(wt *T) {
		wt.Run("", func(wt *T) {
			executed1 = true
			wt.FailNow()
			executed2 = true
		})
		executed3 = true
	})
	assert.True(t, executed1)
	assert.False(t, executed2)
	assert.True(t, executed3)
}

func TestTestScopeExitsImmediatelyOnSkip(t *testing.T) {
	executed1 := false
	executed2 := false
	executed3 := false
	_ = Run(TestConfiguration{}, func(wt *T) {
		wt.Run("", func(wt *T) {
			executed1 = true
			wt.Skip()
			executed2 = true
		})
		executed3 = true
	})
	assert.True(t, executed1)
	assert.False(t, executed2)
	assert.True(t, executed3)
}

func TestTestScopePassedResult(t *testing.T) {
	result := Run(TestConfiguration{}, func(wt *T) {
		wt.Run("parent", func(wt0 *T) {
			wt0.Run("subtest1", func(wt1 *T) {
				// this test passes
			})
			wt0.Run("subtest2", func(wt2 *T) {
				// this test passes
			})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"parent", "subtest1"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Equal(t, TestID{"parent", "subtest2"}, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 0)

	assert.Equal(t, TestID{"parent"}, result.Tests[2].TestID)
	assert.Len(t, result.Tests[2].Errors, 0)

	assert.Nil(t, result.Tests[3].TestID)
	assert.Len(t, result.Tests[3].Errors, 0)
}

func TestTestScopeFailedResult(t *testing.T) {
	result := Run(TestConfiguration{}, func(wt *T) {
		wt.Run("parent", func(wt0 *T) {
			wt0.Run("subtest1", func(wt1 *T) {
				// this test passes
			})
			wt0.Run("subtest2", func(wt2 *T) {
				wt2.Errorf("failed because %s", "reasons")
				wt2.Errorf("and failed some more")
			})
			wt0.Errorf("and parent failed")
		})
	})

	assert.False(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 2)

	assert.Equal(t, TestID{"parent", "subtest1"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Equal(t, TestID{"parent", "subtest2"}, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 2)
	assert.Equal(t, "failed because reasons", result.Tests[1].Errors[0].Error())
	assert.Equal(t, "and failed some more", result.Tests[1].Errors[1].Error())

	assert.Equal(t, TestID{"parent"}, result.Tests[2].TestID)
	assert.Len(t, result.Tests[2].Errors, 1)
	assert.Equal(t, "and parent failed", result.Tests[2].Errors[0].Error())

	assert.Nil(t, result.Tests[3].TestID)
	assert.Len(t, result.Tests[3].Errors, 0)
}

func TestTestScopeSkippedResult(t *testing.T) {
	result := Run(TestConfiguration{}, func(wt *T) {
		wt.Run("parent", func(wt0 *T) {
			wt0.Run("subtest1", func(wt1 *T) {
				wt1.Skip()
			})
			wt0.Run("subtest2", func(wt2 *T) {
				wt2.SkipWithReason("why not")
			})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 2)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"parent"}, result.Tests[0].TestID)
	assert.Len(t, result.Tests[0].Errors, 0)

	assert.Nil(t, result.Tests[1].TestID)
	assert.Len(t, result.Tests[1].Errors, 0)
}

func TestTestScopeFilter(t *testing.T) {
	filter := func(id TestID) bool {
		return len(id) == 0 || id[0] == "b"
	}

	result := Run(TestConfiguration{Filter: filter}, func(wt *T) {
		wt.Run("a", func(wt0 *T) {
			wt0.Run("sub1a", func(wt1 *T) {})
			wt0.Run("sub2a", func(wt1 *T) {})
		})
		wt.Run("b", func(wt0 *T) {
			wt0.Run("sub1b", func(wt1 *T) {})
			wt0.Run("sub2b", func(wt1 *T) {})
		})
	})

	assert.True(t, result.OK())
	assert.Len(t, result.Tests, 4)
	assert.Len(t, result.Failures, 0)

	assert.Equal(t, TestID{"b", "sub1b"}, result.Tests[0].TestID)
	assert.Equal(t, TestID{"b", "sub2b"}, result.Tests[1].TestID)
	assert.Equal(t, TestID{"b"}, result.Tests[2].TestID)
	assert.Equal(t, TestID(nil), result.Tests[3].TestID)
}

func TestTestScopeDefer(t *testing.T) {
	order := []string{}
	_ = Run(TestConfiguration{}, func(wt *T) {
		wt.Run("test", func(wt0 *T) {
			wt0.Defer(func() { order = append(order, "first") })
			wt0.Defer(func() { order = append(order, "second") })
			order = append(order, "body")
		})
	})
	assert.Equal(t, []string{"body", "second", "first"}, order)
}
