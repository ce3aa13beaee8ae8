package cryogena

// GraphQL operation documents. One named document per remote operation so
// every call site issues the exact same contract.
const (
	userFilesQuery = `
	query UserFiles {
		userFiles {
			id
			name
			ownerAvatar
			createdAt
			size
			fileType
			fileUrl
		}
	}`

	userFoldersQuery = `
	query UserFolders {
		userFolders {
			id
			name
			createdAt
		}
	}`

	folderContentsQuery = `
	query FolderContents($folderId: ID!) {
		folderContents(folderId: $folderId) {
			files {
				id
				name
				ownerAvatar
				createdAt
				size
				fileType
				fileUrl
			}
			folders {
				id
				name
				createdAt
			}
		}
	}`

	folderInfoQuery = `
	query FolderInfo($folderId: ID!) {
		folderInfo(folderId: $folderId) {
			id
			name
			parentId
		}
	}`

	binContentsQuery = `
	query BinContents {
		binContents {
			files {
				id
				name
				ownerAvatar
				createdAt
				size
				fileType
				fileUrl
			}
			folders {
				id
				name
				createdAt
			}
		}
	}`

	createFolderMutation = `
	mutation CreateFolder($name: String!, $parentId: ID) {
		createFolder(name: $name, parentId: $parentId) {
			folder {
				id
				name
				createdAt
			}
		}
	}`

	renameFileMutation = `
	mutation RenameFile($fileId: ID!, $newName: String!) {
		renameFile(fileId: $fileId, newName: $newName) {
			success
			message
		}
	}`

	renameFolderMutation = `
	mutation RenameFolder($folderId: ID!, $newName: String!) {
		renameFolder(folderId: $folderId, newName: $newName) {
			success
			message
		}
	}`

	deleteFileMutation = `
	mutation DeleteFile($fileId: ID!) {
		deleteFile(fileId: $fileId) {
			success
			message
		}
	}`

	deleteFolderMutation = `
	mutation DeleteFolder($folderId: ID!) {
		deleteFolder(folderId: $folderId) {
			success
			message
		}
	}`

	deleteFileForeverMutation = `
	mutation DeleteFileForever($fileId: ID!) {
		deleteFileForever(fileId: $fileId) {
			success
			message
		}
	}`

	deleteFolderForeverMutation = `
	mutation DeleteFolderForever($folderId: ID!) {
		deleteFolderForever(folderId: $folderId) {
			success
			message
		}
	}`

	moveFileMutation = `
	mutation MoveFile($fileId: ID!, $folderId: ID) {
		moveFile(fileId: $fileId, folderId: $folderId) {
			success
			message
		}
	}`

	moveFolderMutation = `
	mutation MoveFolder($folderId: ID!, $parentId: ID) {
		moveFolder(folderId: $folderId, parentId: $parentId) {
			success
			message
		}
	}`

	uploadFileMutation = `
	mutation UploadFile($files: [Upload!]!, $folderId: ID) {
		uploadFile(files: $files, folderId: $folderId) {
			success
			message
		}
	}`
)
