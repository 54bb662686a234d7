package handlers

// Route documentation for swag. EntityHandler is generic, so each mounted
// entity route gets an annotation-only function here; `swag init` reads these
// to regenerate docs/api.

// createA documents POST /api/as
// @Summary Create A
// @Description Create a new A; the identifier is assigned by the store
// @Tags A
// @Accept json
// @Produce json
// @Param entity body models.A true "A"
// @Success 201 {object} models.A
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /api/as [post]
func createA() {}

// listAs documents GET /api/as
// @Summary List A
// @Description List every A in identifier order, as JSON or NDJSON
// @Tags A
// @Produce json,application/x-ndjson
// @Param page query int false "Zero based page index"
// @Param size query int false "Page size, default 20 when paging"
// @Param sort query []string false "property,asc|desc" collectionFormat(multi)
// @Param eagerload query bool false "Include the derived bs"
// @Success 200 {array} models.A
// @Header 200 {int} X-Total-Count "Total rows when paging"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/as [get]
func listAs() {}

// getA documents GET /api/as/{id}
// @Summary Get A
// @Tags A
// @Produce json
// @Param id path int true "Identifier"
// @Param eagerload query bool false "Include the derived bs"
// @Success 200 {object} models.A
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/as/{id} [get]
func getA() {}

// updateA documents PUT /api/as/{id}
// @Summary Update A
// @Description Replace every field of an existing A
// @Tags A
// @Accept json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.A true "A"
// @Success 200 {object} models.A
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/as/{id} [put]
func updateA() {}

// patchA documents PATCH /api/as/{id}
// @Summary Partially update A
// @Description Overlay the non-null fields of the body onto an existing A
// @Tags A
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.A true "A"
// @Success 200 {object} models.A
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 415 {object} utils.ErrorResponseStruct
// @Router /api/as/{id} [patch]
func patchA() {}

// deleteA documents DELETE /api/as/{id}
// @Summary Delete A
// @Tags A
// @Param id path int true "Identifier"
// @Success 204
// @Router /api/as/{id} [delete]
func deleteA() {}

// createB documents POST /api/bs
// @Summary Create B
// @Description Create a new B; the identifier is assigned by the store
// @Tags B
// @Accept json
// @Produce json
// @Param entity body models.B true "B"
// @Success 201 {object} models.B
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /api/bs [post]
func createB() {}

// listBs documents GET /api/bs
// @Summary List B
// @Description List every B in identifier order, as JSON or NDJSON
// @Tags B
// @Produce json,application/x-ndjson
// @Param page query int false "Zero based page index"
// @Param size query int false "Page size, default 20 when paging"
// @Param sort query []string false "property,asc|desc" collectionFormat(multi)
// @Param aId query int false "Children of this A"
// @Param filter query string false "Children with no parent" Enums(a-is-null)
// @Success 200 {array} models.B
// @Header 200 {int} X-Total-Count "Total rows when paging"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/bs [get]
func listBs() {}

// getB documents GET /api/bs/{id}
// @Summary Get B
// @Tags B
// @Produce json
// @Param id path int true "Identifier"
// @Success 200 {object} models.B
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/bs/{id} [get]
func getB() {}

// updateB documents PUT /api/bs/{id}
// @Summary Update B
// @Description Replace every field of an existing B
// @Tags B
// @Accept json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.B true "B"
// @Success 200 {object} models.B
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/bs/{id} [put]
func updateB() {}

// patchB documents PATCH /api/bs/{id}
// @Summary Partially update B
// @Description Overlay the non-null fields of the body onto an existing B
// @Tags B
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.B true "B"
// @Success 200 {object} models.B
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 415 {object} utils.ErrorResponseStruct
// @Router /api/bs/{id} [patch]
func patchB() {}

// deleteB documents DELETE /api/bs/{id}
// @Summary Delete B
// @Tags B
// @Param id path int true "Identifier"
// @Success 204
// @Router /api/bs/{id} [delete]
func deleteB() {}

// createC documents POST /api/cs
// @Summary Create C
// @Description Create a new C; the identifier is assigned by the store
// @Tags C
// @Accept json
// @Produce json
// @Param entity body models.C true "C"
// @Success 201 {object} models.C
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /api/cs [post]
func createC() {}

// listCs documents GET /api/cs
// @Summary List C
// @Description List every C in identifier order, as JSON or NDJSON
// @Tags C
// @Produce json,application/x-ndjson
// @Param page query int false "Zero based page index"
// @Param size query int false "Page size, default 20 when paging"
// @Param sort query []string false "property,asc|desc" collectionFormat(multi)
// @Success 200 {array} models.C
// @Header 200 {int} X-Total-Count "Total rows when paging"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/cs [get]
func listCs() {}

// getC documents GET /api/cs/{id}
// @Summary Get C
// @Tags C
// @Produce json
// @Param id path int true "Identifier"
// @Success 200 {object} models.C
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/cs/{id} [get]
func getC() {}

// updateC documents PUT /api/cs/{id}
// @Summary Update C
// @Description Replace every field of an existing C
// @Tags C
// @Accept json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.C true "C"
// @Success 200 {object} models.C
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/cs/{id} [put]
func updateC() {}

// patchC documents PATCH /api/cs/{id}
// @Summary Partially update C
// @Description Overlay the non-null fields of the body onto an existing C
// @Tags C
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.C true "C"
// @Success 200 {object} models.C
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 415 {object} utils.ErrorResponseStruct
// @Router /api/cs/{id} [patch]
func patchC() {}

// deleteC documents DELETE /api/cs/{id}
// @Summary Delete C
// @Tags C
// @Param id path int true "Identifier"
// @Success 204
// @Router /api/cs/{id} [delete]
func deleteC() {}

// createD documents POST /api/ds
// @Summary Create D
// @Description Create a new D; the identifier is assigned by the store
// @Tags D
// @Accept json
// @Produce json
// @Param entity body models.D true "D"
// @Success 201 {object} models.D
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /api/ds [post]
func createD() {}

// listDs documents GET /api/ds
// @Summary List D
// @Description List every D in identifier order, as JSON or NDJSON
// @Tags D
// @Produce json,application/x-ndjson
// @Param page query int false "Zero based page index"
// @Param size query int false "Page size, default 20 when paging"
// @Param sort query []string false "property,asc|desc" collectionFormat(multi)
// @Success 200 {array} models.D
// @Header 200 {int} X-Total-Count "Total rows when paging"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/ds [get]
func listDs() {}

// getD documents GET /api/ds/{id}
// @Summary Get D
// @Tags D
// @Produce json
// @Param id path int true "Identifier"
// @Success 200 {object} models.D
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/ds/{id} [get]
func getD() {}

// updateD documents PUT /api/ds/{id}
// @Summary Update D
// @Description Replace every field of an existing D
// @Tags D
// @Accept json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.D true "D"
// @Success 200 {object} models.D
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/ds/{id} [put]
func updateD() {}

// patchD documents PATCH /api/ds/{id}
// @Summary Partially update D
// @Description Overlay the non-null fields of the body onto an existing D
// @Tags D
// @Accept application/merge-patch+json
// @Produce json
// @Param id path int true "Identifier"
// @Param entity body models.D true "D"
// @Success 200 {object} models.D
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 415 {object} utils.ErrorResponseStruct
// @Router /api/ds/{id} [patch]
func patchD() {}

// deleteD documents DELETE /api/ds/{id}
// @Summary Delete D
// @Tags D
// @Param id path int true "Identifier"
// @Success 204
// @Router /api/ds/{id} [delete]
func deleteD() {}

// createEDSApplication documents POST /api/eds-applications
// @Summary Create EDSApplication
// @Description Create a new EDSApplication; the identifier is assigned by the store
// @Tags EDSApplication
// @Accept json
// @Produce json
// @Param entity body models.EDSApplication true "EDSApplication"
// @Success 201 {object} models.EDSApplication
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /api/eds-applications [post]
func createEDSApplication() {}

// listEDSApplications documents GET /api/eds-applications
// @Summary List EDSApplication
// @Description List every EDSApplication in identifier order, as JSON or NDJSON
// @Tags EDSApplication
// @Produce json,application/x-ndjson
// @Param page query int false "Zero based page index"
// @Param size query int false "Page size, default 20 when paging"
// @Param sort query []string false "property,asc|desc" collectionFormat(multi)
// @Success 200 {array} models.EDSApplication
// @Header 200 {int} X-Total-Count "Total rows when paging"
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /api/eds-applications [get]
func listEDSApplications() {}

// getEDSApplication documents GET /api/eds-applications/{id}
// @Summary Get EDSApplication
// @Tags EDSApplication
// @Produce json
// @Param id path string true "Identifier"
// @Success 200 {object} models.EDSApplication
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/eds-applications/{id} [get]
func getEDSApplication() {}

// updateEDSApplication documents PUT /api/eds-applications/{id}
// @Summary Update EDSApplication
// @Description Replace every field of an existing EDSApplication
// @Tags EDSApplication
// @Accept json
// @Produce json
// @Param id path string true "Identifier"
// @Param entity body models.EDSApplication true "EDSApplication"
// @Success 200 {object} models.EDSApplication
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /api/eds-applications/{id} [put]
func updateEDSApplication() {}

// patchEDSApplication documents PATCH /api/eds-applications/{id}
// @Summary Partially update EDSApplication
// @Description Overlay the non-null fields of the body onto an existing EDSApplication
// @Tags EDSApplication
// @Accept application/merge-patch+json,json
// @Produce json
// @Param id path string true "Identifier"
// @Param entity body models.EDSApplication true "EDSApplication"
// @Success 200 {object} models.EDSApplication
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 415 {object} utils.ErrorResponseStruct
// @Router /api/eds-applications/{id} [patch]
func patchEDSApplication() {}

// deleteEDSApplication documents DELETE /api/eds-applications/{id}
// @Summary Delete EDSApplication
// @Tags EDSApplication
// @Param id path string true "Identifier"
// @Success 204
// @Router /api/eds-applications/{id} [delete]
func deleteEDSApplication() {}
