package queries

import "github.com/rpupo63/developer-projects-backend/models"

func InsertDeveloperInfo(r models.DeveloperInfoRequest) (Statement, error) {
	return Insert(DeveloperInfos, r)
}

func UpdateDeveloperInfo(id int64, r models.DeveloperInfoRequest) (Statement, error) {
	return Update(DeveloperInfos, id, r)
}

func DeveloperInfoByID(id int64) (Statement, error) {
	return SelectByID(DeveloperInfos, id)
}

func DeleteDeveloperInfo(id int64) (Statement, error) {
	return DeleteByID(DeveloperInfos, id)
}
