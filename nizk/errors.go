package nizk

import "errors"

// ErrRejected names a proof whose recomputed challenge does not match the
// one it carries. Verify reports that case as false and does not return
// this error; the role packages report a rejected proof as
// ps.ErrNizkRejected.
var ErrRejected = errors.New("nizk: proof rejected")
