package output

import "os"

// filePerm is the mode of the written document, before umask.
const filePerm os.FileMode = 0o644
